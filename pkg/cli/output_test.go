package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"id", "name"}, [][]string{
		{"rt1", "RT 01 Melati"},
		{"rt2", "RT 02"},
	})

	want := "ID   NAME\n" +
		"rt1  RT 01 Melati\n" +
		"rt2  RT 02\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTable_HeaderWiderThanCells(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"identifier", "x"}, [][]string{{"a", "b"}})

	want := "IDENTIFIER  X\n" +
		"a           b\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTable_NoRows(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"id", "name"}, nil)
	assert.Equal(t, "ID  NAME\n", buf.String())
}

func TestPrintTable_NoColumns(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, [][]string{{"a"}})
	assert.Empty(t, buf.String())
}

func TestPrintTable_ShortRow(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"id", "name"}, [][]string{{"x1"}})

	want := "ID  NAME\n" +
		"x1\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]string{"status": "ok"}))
	assert.Equal(t, "{\n  \"status\": \"ok\"\n}\n", buf.String())
}

func TestPrintJSON_Nil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, nil))
	assert.Equal(t, "null\n", buf.String())
}

func TestPrintDetail(t *testing.T) {
	var buf bytes.Buffer
	PrintDetail(&buf, map[string]any{
		"name":   "SDN Melati 1",
		"id":     "u1",
		"active": true,
	})

	want := "active:  true\n" +
		"id:      u1\n" +
		"name:    SDN Melati 1\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintDetail_ValueKinds(t *testing.T) {
	var buf bytes.Buffer
	PrintDetail(&buf, map[string]any{
		"count":    3,
		"empty":    nil,
		"settings": map[string]any{"theme": "dark"},
		"tags":     []any{"a", "b"},
	})

	want := "count:     3\n" +
		"empty:     \n" +
		"settings:  {\"theme\":\"dark\"}\n" +
		"tags:      [\"a\",\"b\"]\n"
	assert.Equal(t, want, buf.String())
}
