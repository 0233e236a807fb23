////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package storage

// Environment reports whether execution is currently happening in a client
// context, meaning one with access to client-scoped persistent storage. The
// predicate is evaluated fresh on every operation and never cached, so hosts
// whose context can change over the life of the process may answer
// differently per call.
type Environment interface {
	IsClient() bool
}

// EnvironmentFunc adapts a plain predicate to the Environment interface.
type EnvironmentFunc func() bool

func (f EnvironmentFunc) IsClient() bool { return f() }

// Client is the environment of processes that own client-scoped storage, such
// as a browser session or a CLI run against a local session directory.
var Client Environment = EnvironmentFunc(func() bool { return true })

// Server is the environment of server-side or build-time execution. Every
// invite code operation is a silent no-op under it.
var Server Environment = EnvironmentFunc(func() bool { return false })
