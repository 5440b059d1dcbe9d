// Package kvstore provides the key-value storage capability the OTP engine
// and rate limiter are built on: string values keyed by string, with optional
// per-key TTL.
//
// Two interchangeable backends exist: an in-process map with eviction timers
// (development and tests) and Redis (production). The store is the single
// source of truth for OTP records, attempt counters, and rate-limit windows;
// consumers never cache entries locally.
package kvstore
