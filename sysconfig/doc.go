// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sysconfig is the single writer of the system configuration: the
open/closed voting gate and the per-IP vote limit.

	store, err := sysconfig.Load(ctx, conn)
	cfg := store.Get()                     // consistent copy
	cfg, err = store.SetOpen(ctx, true)    // admin only
	cfg, err = store.SetLimit(ctx, 5)      // bounds-checked 1..20

Mutations are administrator-triggered only and write through to the
system_config row before updating memory. SetLimit rejects values outside
1..20 with ErrInvalidConfig and retains the prior value.
*/
package sysconfig
