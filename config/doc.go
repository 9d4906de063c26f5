// Copyright 2026 The synchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads synchttp client settings from an optional
// configuration file, optional dotenv files, and SYNCHTTP_ environment
// variables, and builds a ready Client, Engine and Logger from them.
//
// A minimal YAML file looks like:
//
//	engine: resty
//	timeout: 10s
//	follow_redirects: true
//	log_level: debug
//
// Every key may be overridden by an environment variable named after
// it, for example SYNCHTTP_TIMEOUT=2s.
package config
