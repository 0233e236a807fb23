////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/netTime"

	"gitlab.com/elixxir/invitestore/storage/versioned"
)

const pendingInviteCodeKey = "pendingInviteCode"
const pendingInviteCodeVersion = 0

// StoreInviteCode persists code as the pending invite code, overwriting any
// previous one. The code is opaque; no format validation is done and the
// empty string is accepted. Outside a client context the call does nothing
// and returns nil — the code is dropped, not deferred, so a caller expecting
// it to surface once a client context becomes available will not find it.
func (s *Session) StoreInviteCode(code string) error {
	if !s.env.IsClient() {
		jww.DEBUG.Printf("Not in a client context, dropping invite code")
		return nil
	}

	return s.kv.Set(pendingInviteCodeKey, &versioned.Object{
		Version:   pendingInviteCodeVersion,
		Timestamp: netTime.Now(),
		Data:      []byte(code),
	})
}

// ConsumePendingInviteCode returns the pending invite code and clears it, so
// a stored code is handed out at most once. exists is false when no code is
// pending or when not running in a client context; it distinguishes a stored
// empty string from absence. The read and the delete are two separate storage
// calls with no atomicity between them.
func (s *Session) ConsumePendingInviteCode() (code string, exists bool,
	err error) {
	if !s.env.IsClient() {
		return "", false, nil
	}

	obj, err := s.kv.Get(pendingInviteCodeKey, pendingInviteCodeVersion)
	if err != nil {
		if !s.kv.Exists(err) {
			return "", false, nil
		}
		return "", false, errors.WithMessage(err,
			"Failed to load the pending invite code")
	}

	err = s.kv.Delete(pendingInviteCodeKey, pendingInviteCodeVersion)
	if err != nil {
		return "", false, errors.WithMessage(err,
			"Failed to clear the consumed invite code")
	}

	jww.TRACE.Printf("Consumed pending invite code")
	return string(obj.Data), true, nil
}

// ClearStoredInviteCode drops the pending invite code if one is present.
// Clearing an absent code is not an error.
func (s *Session) ClearStoredInviteCode() error {
	if !s.env.IsClient() {
		return nil
	}

	err := s.kv.Delete(pendingInviteCodeKey, pendingInviteCodeVersion)
	if err != nil && !s.kv.Exists(err) {
		return nil
	}
	return err
}
