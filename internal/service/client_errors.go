package service

import "errors"

var (
	// ErrOffline rejects login/register attempts while the connectivity
	// oracle reports offline. There is no local authentication fallback.
	ErrOffline = errors.New("network is unavailable")

	// ErrRegisterFailed wraps a server-side registration rejection
	// (missing fields, duplicate email).
	ErrRegisterFailed = errors.New("registration failed")

	// ErrLoginFailed wraps a server-side login rejection (bad credentials).
	ErrLoginFailed = errors.New("login failed")
)
