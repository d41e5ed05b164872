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

import "github.com/btcsuite/goleveldb/leveldb/errors"

// Host-contract violations. An access-control violation itself is reported
// in-band through the ACV latch, not as an error. LoadImage returns
// ErrInvalidImage for an image that overruns memory. Step returns
// ErrMicrostateUndefined when it executes a microstate with no control-store
// entry, and resumes at state 18 afterward; this includes the unpopulated
// exception states (48, 56, 57, 60, 61) that an ACV_TEST branch leads to.
// ErrAddressRange tags the diagnostic Step logs for an out-of-range MAR.
var (
	ErrAddressRange        = errors.New("lc3: address outside addressable memory")
	ErrMicrostateUndefined = errors.New("lc3: microstate has no control-store entry")
	ErrInvalidImage        = errors.New("lc3: invalid memory image")
)
