// Copyright 2024 The dtparse Authors.
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

package locale_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icu4go/dtparse/locale"
)

const yamlPack = `
eras: ["a.C.", "d.C."]
ampms: ["AM", "PM"]
months: ["enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"]
short_months: ["ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"]
weekdays: ["domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"]
short_weekdays: ["dom", "lun", "mar", "mie", "jue", "vie", "sab"]
date_formats: ["d/M/yy"]
`

const tomlPack = `
eras = ["a.C.", "d.C."]
ampms = ["AM", "PM"]
months = ["enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"]
short_months = ["ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"]
weekdays = ["domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"]
short_weekdays = ["dom", "lun", "mar", "mie", "jue", "vie", "sab"]
date_formats = ["d/M/yy"]
`

func TestYAMLFileProviderDecodesLocalePack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlPack), 0o600))

	sym, err := locale.YAMLFileProvider(path)("es")
	require.NoError(t, err)
	require.Equal(t, "enero", sym.Months[0])
	require.Equal(t, "domingo", sym.Weekdays[0])
	require.Equal(t, "d/M/yy", sym.DateFormats[0])
}

func TestTOMLFileProviderDecodesLocalePack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlPack), 0o600))

	sym, err := locale.TOMLFileProvider(path)("es")
	require.NoError(t, err)
	require.Equal(t, "enero", sym.Months[0])
	require.Equal(t, "sabado", sym.Weekdays[6])
}

func TestRegisterYAMLFileProviderBackfillsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "es.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlPack), 0o600))

	require.NoError(t, locale.Register("es_test", locale.YAMLFileProvider(path)))
	sym, err := locale.Get("es_test")
	require.NoError(t, err)
	require.Equal(t, "es_test", sym.Name)
}
