////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

import (
	"testing"

	"gitlab.com/elixxir/ekv"
)

func initTestingSession(t *testing.T) *Session {
	t.Helper()
	return NewFromKV(Client, ekv.MakeMemstore())
}

// A stored code comes back from a consume, and a second consume finds the
// slot empty.
func TestSession_StoreInviteCode_Consume(t *testing.T) {
	testSession := initTestingSession(t)

	expectedVal := "BZBAQ3"
	if err := testSession.StoreInviteCode(expectedVal); err != nil {
		t.Fatalf("Failed to store the invite code: %v", err)
	}

	retrievedVal, exists, err := testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Failed to consume the invite code: %v", err)
	}
	if !exists {
		t.Error("Stored code was not reported as pending")
	}
	if retrievedVal != expectedVal {
		t.Errorf("Expected value not retrieved from storage!"+
			"\n\tExpected: %v"+
			"\n\tReceived: %v", expectedVal, retrievedVal)
	}

	retrievedVal, exists, err = testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Second consume errored: %v", err)
	}
	if exists || retrievedVal != "" {
		t.Errorf("Second consume should find nothing, got %q", retrievedVal)
	}
}

// Storing twice keeps only the most recent code.
func TestSession_StoreInviteCode_Overwrite(t *testing.T) {
	testSession := initTestingSession(t)

	if err := testSession.StoreInviteCode("A"); err != nil {
		t.Fatalf("Failed to store the invite code: %v", err)
	}
	if err := testSession.StoreInviteCode("B"); err != nil {
		t.Fatalf("Failed to overwrite the invite code: %v", err)
	}

	retrievedVal, exists, err := testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Failed to consume the invite code: %v", err)
	}
	if !exists || retrievedVal != "B" {
		t.Errorf("Overwrite lost the newest code, got %q", retrievedVal)
	}
}

// A cleared code is gone for good.
func TestSession_ClearStoredInviteCode(t *testing.T) {
	testSession := initTestingSession(t)

	if err := testSession.StoreInviteCode("doomed"); err != nil {
		t.Fatalf("Failed to store the invite code: %v", err)
	}
	if err := testSession.ClearStoredInviteCode(); err != nil {
		t.Errorf("Failed to clear the invite code: %v", err)
	}

	_, exists, err := testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Consume after clear errored: %v", err)
	}
	if exists {
		t.Error("Cleared code is still pending")
	}
}

// Clearing when nothing is pending is not an error.
func TestSession_ClearStoredInviteCode_Empty(t *testing.T) {
	testSession := initTestingSession(t)

	if err := testSession.ClearStoredInviteCode(); err != nil {
		t.Errorf("Clearing an empty slot errored: %v", err)
	}
}

// Consuming with nothing stored reports absence and leaves storage untouched.
func TestSession_ConsumePendingInviteCode_Empty(t *testing.T) {
	mem := ekv.MakeMemstore()
	testSession := NewFromKV(Client, mem)

	retrievedVal, exists, err := testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Consume on an empty slot errored: %v", err)
	}
	if exists || retrievedVal != "" {
		t.Errorf("Empty slot reported a pending code: %q", retrievedVal)
	}

	if _, err = mem.GetBytes("pendingInviteCode_0"); ekv.Exists(err) {
		t.Error("Consume on an empty slot wrote to storage")
	}
}

// The empty string is a storable code, distinguishable from absence.
func TestSession_StoreInviteCode_EmptyString(t *testing.T) {
	testSession := initTestingSession(t)

	if err := testSession.StoreInviteCode(""); err != nil {
		t.Fatalf("Failed to store the empty code: %v", err)
	}

	retrievedVal, exists, err := testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Failed to consume the invite code: %v", err)
	}
	if !exists {
		t.Error("Stored empty code was not reported as pending")
	}
	if retrievedVal != "" {
		t.Errorf("Expected empty code, got %q", retrievedVal)
	}
}

// Outside a client context every operation is a no-op: nothing is written,
// nothing is read, nothing is deleted.
func TestSession_NonClientContext(t *testing.T) {
	isClient := false
	env := EnvironmentFunc(func() bool { return isClient })
	testSession := NewFromKV(env, ekv.MakeMemstore())

	if err := testSession.StoreInviteCode("X"); err != nil {
		t.Errorf("Non-client store errored: %v", err)
	}

	// Becoming a client afterwards must not surface the dropped code.
	isClient = true
	retrievedVal, exists, err := testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Consume errored: %v", err)
	}
	if exists {
		t.Errorf("Code stored outside a client context was persisted: %q",
			retrievedVal)
	}

	// A pending code survives non-client consume and clear attempts.
	if err = testSession.StoreInviteCode("Y"); err != nil {
		t.Fatalf("Failed to store the invite code: %v", err)
	}
	isClient = false
	if _, exists, err = testSession.ConsumePendingInviteCode(); err != nil {
		t.Errorf("Non-client consume errored: %v", err)
	} else if exists {
		t.Error("Non-client consume returned a code")
	}
	if err = testSession.ClearStoredInviteCode(); err != nil {
		t.Errorf("Non-client clear errored: %v", err)
	}

	isClient = true
	retrievedVal, exists, err = testSession.ConsumePendingInviteCode()
	if err != nil {
		t.Errorf("Consume errored: %v", err)
	}
	if !exists || retrievedVal != "Y" {
		t.Errorf("Pending code did not survive non-client calls, got %q",
			retrievedVal)
	}
}
