// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiclient provides the HTTP client used to talk to the Dragon Ball
// API.
//
// A [Client] is built once by the composition root with [New] and is
// read-only afterwards, so it can be shared by any number of goroutines. It
// wraps a resty transport configured with a fixed base URL, a per-request
// timeout and default headers, and runs two interception points around every
// call:
//
//   - outbound: records the method, absolute URL and merged headers of the
//     pending request through an [EventRecorder];
//   - inbound: records successful responses and normalizes every failure.
//
// Failures are classified into exactly one [Failure] variant
// ([ServerResponded], [NoResponse] or [RequestSetupError]) and returned as an
// [*Error] that keeps the original transport error and adds a user-facing
// FriendlyMessage. UI code reads the message with [FriendlyMessageOf]; the
// diagnostic side goes to the recorder.
package apiclient
