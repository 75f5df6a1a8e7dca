// Copyright 2026 go-bitexpand Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expand

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger = zap.NewNop()
	loggerPtr atomic.Pointer[zap.Logger]
)

// Logger returns the logger used by expand and its contrib packages.
// It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger installs l for expand and its contrib packages. Passing nil
// restores the silent default. SetLogger is safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nopLogger
	}
	loggerPtr.Store(l)
	l.Debug("bit expansion kernel selected", zap.String("dispatch", currentName))
}
