////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package versioned

import (
	"fmt"

	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/ekv"
)

const PrefixSeparator = "/"

// KeyValue is the slice of the ekv interface needed by KV: a synchronous,
// durable, string-keyed byte store. ekv.Memstore and ekv.Filestore satisfy
// it, as does any host-provided backend with the same contract.
type KeyValue interface {
	SetBytes(key string, data []byte) error
	GetBytes(key string) ([]byte, error)
	Delete(key string) error
}

// KV stores versioned data under namespaced keys.
type KV struct {
	data   KeyValue
	prefix string
}

// NewKV creates a versioned key/value store backed by something implementing
// KeyValue.
func NewKV(data KeyValue) *KV {
	return &KV{data: data}
}

// Get returns the Object stored at key. The error reports key absence per
// the backing store's contract; check it with Exists.
func (v *KV) Get(key string, version uint64) (*Object, error) {
	key = v.makeKey(key, version)
	jww.TRACE.Printf("get %T with key %v", v.data, key)
	raw, err := v.data.GetBytes(key)
	if err != nil {
		return nil, err
	}
	result := &Object{}
	if err = result.Unmarshal(raw); err != nil {
		return nil, err
	}
	return result, nil
}

// Set upserts new data into the storage, overwriting whatever the key held
// before. The [Object] carries the version used to namespace the key.
func (v *KV) Set(key string, object *Object) error {
	key = v.makeKey(key, object.Version)
	jww.TRACE.Printf("set %T with key %v", v.data, key)
	return v.data.SetBytes(key, object.Marshal())
}

// Delete removes a given key from the data store.
func (v *KV) Delete(key string, version uint64) error {
	key = v.makeKey(key, version)
	jww.TRACE.Printf("delete %T with key %v", v.data, key)
	return v.data.Delete(key)
}

// GetPrefix returns the prefix of the KV.
func (v *KV) GetPrefix() string {
	return v.prefix
}

// Prefix returns a new KV namespaced under the given prefix, sharing the same
// backing store.
func (v *KV) Prefix(prefix string) *KV {
	return &KV{
		data:   v.data,
		prefix: v.prefix + prefix + PrefixSeparator,
	}
}

// GetFullKey returns the key with all prefixes appended.
func (v *KV) GetFullKey(key string, version uint64) string {
	return v.makeKey(key, version)
}

func (v *KV) makeKey(key string, version uint64) string {
	return fmt.Sprintf("%s%s_%d", v.prefix, key, version)
}

// Exists returns false if the error indicates the element doesn't exist.
func (v *KV) Exists(err error) bool {
	return ekv.Exists(err)
}
