////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Session object definition

package storage

import (
	"github.com/pkg/errors"
	"gitlab.com/elixxir/ekv"

	"gitlab.com/elixxir/invitestore/storage/versioned"
)

// Session is a client-scoped storage session holding the pending invite code
// slot. It is backed by an encrypted filestore when created with New.
type Session struct {
	kv  *versioned.KV
	env Environment
}

// New creates a Session over an encrypted filestore rooted at baseDir, in the
// Client environment.
func New(baseDir, password string) (*Session, error) {
	fs, err := ekv.NewFilestore(baseDir, password)
	if err != nil {
		return nil, errors.WithMessage(err,
			"Failed to create storage session")
	}

	return &Session{
		kv:  versioned.NewKV(fs),
		env: Client,
	}, nil
}

// NewFromKV builds a Session over injected environment and storage
// capabilities. Hosts that manage their own storage use this, as do tests.
func NewFromKV(env Environment, data versioned.KeyValue) *Session {
	return &Session{
		kv:  versioned.NewKV(data),
		env: env,
	}
}
