package encoding

import (
	"path/filepath"
	"testing"
)

// testMessageYAML is a test structure to use for encoding tests using YAML.
type testMessageYAML struct {
	Section struct {
		Name string `yaml:"name"`
		Age  uint   `yaml:"age"`
	} `yaml:"section"`
}

const (
	// testMessageYAMLString is the YAML-encoded form of the YAML test data.
	testMessageYAMLString = `
section:
  name: "Abraham"
  age: 56
`
	// testMessageYAMLUnknownField is YAML data containing an unknown field.
	testMessageYAMLUnknownField = `
section:
  name: "Abraham"
  height: 193
`
	// testMessageYAMLName is the YAML test name.
	testMessageYAMLName = "Abraham"
	// testMessageYAMLAge is the YAML test age.
	testMessageYAMLAge = 56
)

// TestLoadAndUnmarshalYAML tests that loading and unmarshaling YAML data
// succeeds.
func TestLoadAndUnmarshalYAML(t *testing.T) {
	path := writeTestFile(t, testMessageYAMLString)

	// Attempt to load and unmarshal.
	value := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Fatal("LoadAndUnmarshalYAML failed:", err)
	}

	// Verify test values.
	if value.Section.Name != testMessageYAMLName {
		t.Error("test message name mismatch:", value.Section.Name, "!=", testMessageYAMLName)
	}
	if value.Section.Age != testMessageYAMLAge {
		t.Error("test message age mismatch:", value.Section.Age, "!=", testMessageYAMLAge)
	}
}

// TestLoadAndUnmarshalYAMLUnknownField tests that unknown fields are rejected.
func TestLoadAndUnmarshalYAMLUnknownField(t *testing.T) {
	path := writeTestFile(t, testMessageYAMLUnknownField)
	if LoadAndUnmarshalYAML(path, &testMessageYAML{}) == nil {
		t.Error("YAML with unknown field decoded successfully")
	}
}

// TestLoadAndUnmarshalYAMLEmpty tests that an empty file leaves the value
// unmodified.
func TestLoadAndUnmarshalYAMLEmpty(t *testing.T) {
	path := writeTestFile(t, "")
	value := &testMessageYAML{}
	value.Section.Name = "preset"
	if err := LoadAndUnmarshalYAML(path, value); err != nil {
		t.Fatal("unable to load empty YAML file:", err)
	} else if value.Section.Name != "preset" {
		t.Error("empty YAML file modified value")
	}
}

// TestMarshalAndSaveYAMLCycle tests a save and load cycle.
func TestMarshalAndSaveYAMLCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.yml")
	original := &testMessageYAML{}
	original.Section.Name = testMessageYAMLName
	original.Section.Age = testMessageYAMLAge
	if err := MarshalAndSaveYAML(path, original, nil); err != nil {
		t.Fatal("unable to save YAML:", err)
	}

	loaded := &testMessageYAML{}
	if err := LoadAndUnmarshalYAML(path, loaded); err != nil {
		t.Fatal("unable to load YAML:", err)
	} else if *loaded != *original {
		t.Error("loaded value does not match saved value")
	}
}
