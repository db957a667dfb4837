package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orchbench/orchbench/pkg/client/domain"
)

func TestBindJsonOrYaml_Yaml(t *testing.T) {
	spec := &domain.LoadTestSpecification{}
	err := BindJsonOrYaml(filepath.Join("testdata", "loadtest.yaml"), spec)
	assert.NoError(t, err)
	assert.Equal(t, getExpectedSpecification(), spec)
}

func TestBindJsonOrYaml_Json(t *testing.T) {
	spec := &domain.LoadTestSpecification{}
	err := BindJsonOrYaml(filepath.Join("testdata", "loadtest.json"), spec)
	assert.NoError(t, err)
	assert.Equal(t, getExpectedSpecification(), spec)
}

func TestBindJsonOrYaml_MissingFile(t *testing.T) {
	spec := &domain.LoadTestSpecification{}
	err := BindJsonOrYaml(filepath.Join("testdata", "no-such-file.yaml"), spec)
	assert.Error(t, err)
}

func getExpectedSpecification() *domain.LoadTestSpecification {
	return &domain.LoadTestSpecification{
		Count:            5000,
		ConcurrencyLimit: 200,
		Prefix:           "nightly",
	}
}
