// Copyright 2026 EngFlow Inc. All rights reserved.
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

package preproc

import "github.com/lassade/preproc/internal/platform"

// NewForPlatform creates a Preprocessor seeded with the predefined macros of
// the given OS/Arch target (e.g. "linux"/"x86_64", "windows"/"amd64") in
// addition to extraDefines, so headers gated on compiler-predefined macros
// like __linux__ or _WIN32 evaluate the same way they would under a real
// compiler for that target.
func NewForPlatform(loader Loader, cfg Config, os, arch string, extraDefines ...string) (*Preprocessor, error) {
	p, err := platform.Create(platform.OS(os), platform.Arch(arch))
	if err != nil {
		return nil, err
	}
	defines := append(platform.Macros(p), extraDefines...)
	return New(loader, cfg, defines...), nil
}
