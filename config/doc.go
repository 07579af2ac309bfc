// Package config loads sharing parameters from files or the environment and
// turns them into ready-to-use schemes.
//
// A configuration file may be YAML, JSON or TOML:
//
//	scheme: shamir-gf256
//	threshold: 3
//	ramp: 2
//	num: 5
//	padding: true
//	log:
//	  level: debug
//
// Every key can be overridden by an environment variable with the SSS_
// prefix, e.g. SSS_THRESHOLD=4 or SSS_LOG_LEVEL=info.
package config
