package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSchema(t *testing.T, dir, name, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGenerateCommandEndToEnd(t *testing.T) {
	schemas := t.TempDir()
	output := filepath.Join(t.TempDir(), "dtos")

	writeSchema(t, schemas, "shop.yaml", `
Item:
  fields:
    sku:
      type: string
      required: true

Order:
  fields:
    id:
      type: int
      required: true
    items:
      type: Item[]
      collection: true
      required: true
`)

	out, err := runCLI(t,
		"generate",
		"--config", schemas,
		"--output", output,
		"--suffix", "Dto",
		"--targets", "go,ts,jsonschema,meta",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "generated 5 file(s) from 2 dto(s)")

	for _, name := range []string{"item_dto.go", "order_dto.go", "dtos.ts", "dtos.schema.json", "dtos.meta.json"} {
		if _, statErr := os.Stat(filepath.Join(output, name)); statErr != nil {
			t.Errorf("missing output file %s: %v", name, statErr)
		}
	}
}

func TestGenerateCommandUnknownTarget(t *testing.T) {
	schemas := t.TempDir()
	writeSchema(t, schemas, "x.yaml", "X:\n  fields:\n    id: int\n")

	_, err := runCLI(t, "generate", "--config", schemas, "--targets", "java")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")
}

func TestGenerateCommandReportsSchemaErrors(t *testing.T) {
	schemas := t.TempDir()
	writeSchema(t, schemas, "bad.yaml", "Order:\n  fields:\n    id: not-a-type\n")

	_, err := runCLI(t, "generate", "--config", schemas, "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type_invalid")
}

func TestDumpCommandPrintsDefinitions(t *testing.T) {
	schemas := t.TempDir()
	writeSchema(t, schemas, "x.yaml", "Point:\n  fields:\n    x:\n      type: int\n      required: true\n")

	out, err := runCLI(t, "dump", "--config", schemas)
	require.NoError(t, err)
	assert.Contains(t, out, "Point")
	assert.Contains(t, out, "TypeHint")
}

func TestLoadClassesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: App\Money
  immutable: true
  hasToArray: true
- name: App\Status
  enum: true
  enumBacking: string
`), 0o644))

	classes, err := loadClasses(path)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, `App\Money`, classes[0].Name)
	assert.True(t, classes[0].Immutable)
	assert.True(t, classes[1].Enum)
	assert.Equal(t, "string", classes[1].EnumBacking)

	none, err := loadClasses("")
	require.NoError(t, err)
	assert.Nil(t, none)
}
