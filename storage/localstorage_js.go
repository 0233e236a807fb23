////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

package storage

import (
	"encoding/base64"
	"os"
	"syscall/js"
)

// localStorage adapts window.localStorage to versioned.KeyValue. Values are
// base64 wrapped because localStorage only holds strings.
type localStorage struct{}

func (localStorage) SetBytes(key string, data []byte) error {
	js.Global().Get("localStorage").Call("setItem", key,
		base64.StdEncoding.EncodeToString(data))
	return nil
}

func (localStorage) GetBytes(key string) ([]byte, error) {
	res := js.Global().Get("localStorage").Call("getItem", key)
	if !res.Truthy() {
		return nil, os.ErrNotExist
	}
	return base64.StdEncoding.DecodeString(res.String())
}

func (localStorage) Delete(key string) error {
	js.Global().Get("localStorage").Call("removeItem", key)
	return nil
}

// NewBrowserSession creates a Session over the browser's localStorage, which
// persists across navigation and page reloads within the same origin.
func NewBrowserSession() *Session {
	return NewFromKV(Client, localStorage{})
}
