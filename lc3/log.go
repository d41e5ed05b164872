// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package lc3

// Logger receives diagnostic lines from the core. No functional behavior
// depends on it; the default implementation discards everything.
type Logger interface {
	Log(msg string)
}

type defaultLogger struct{}

func (l *defaultLogger) Log(msg string) {}

var (
	defaultLoggerImpl       = &defaultLogger{}
	logger            Logger = defaultLoggerImpl

	// traceEnable gates per-cycle microstate tracing. Host-contract
	// diagnostics (unpopulated microstate, out-of-range access) are
	// always logged regardless of this flag.
	traceEnable = false
)

// SetLogger installs a Logger to receive diagnostics. A nil impl restores
// the no-op default.
func SetLogger(impl Logger) {
	if impl == nil {
		logger = defaultLoggerImpl
	} else {
		logger = impl
	}
}

// SetTraceEnable toggles per-cycle microstate tracing.
func SetTraceEnable(enable bool) {
	traceEnable = enable
}

// logTrace emits a per-cycle microstate line, gated by traceEnable. Machine
// calls this once per Step for the state/PC/IR/MAR/MDR snapshot; it is a
// no-op unless a host has opted into tracing.
func logTrace(msg string) {
	if traceEnable {
		logger.Log(msg)
	}
}

// logFault emits a host-contract-violation diagnostic unconditionally: an
// unpopulated microstate or an out-of-range access is never silent, even
// with tracing off, per spec.md §7's "never hide a fault" contract.
func logFault(msg string) {
	logger.Log(msg)
}
