/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSQLStatements(t *testing.T) {
	content := `-- header comment
CREATE TABLE a (x TEXT DEFAULT 'a;b');
-- between
INSERT INTO a VALUES ('c');
SELECT 1`

	got := splitSQLStatements(content)
	require.Len(t, got, 3)
	assert.Equal(t, "CREATE TABLE a (x TEXT DEFAULT 'a;b')", got[0])
	assert.Equal(t, "INSERT INTO a VALUES ('c')", got[1])
	assert.Equal(t, "SELECT 1", got[2])
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, "00001", extractVersion("00001_seat_tables.up.sql"))
	assert.Equal(t, "nounderscore.up.sql", extractVersion("nounderscore.up.sql"))
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, "00001", migrations[0].version)
	assert.Len(t, migrations[0].statements, 3)
	assert.Equal(t, "00002", migrations[1].version)
	assert.Contains(t, migrations[1].statements[0], "machine_serial")
}
