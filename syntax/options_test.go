// Copyright 2026 The rxsyntax Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexlang/rxsyntax/syntax"
)

func TestSkipsWhitespace(t *testing.T) {
	require.True(t, syntax.Options{ExtendedSyntax: true}.SkipsWhitespace())
	require.True(t, syntax.Options{NonSemanticWhitespace: true}.SkipsWhitespace())
	require.False(t, syntax.Options{}.SkipsWhitespace())
}

func TestAllowsHashComments(t *testing.T) {
	require.True(t, syntax.Options{ExtendedSyntax: true}.AllowsHashComments())
	require.False(t, syntax.Options{NonSemanticWhitespace: true}.AllowsHashComments())
	require.False(t, syntax.Options{}.AllowsHashComments())
}
