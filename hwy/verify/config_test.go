package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hwyverify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, DefaultMetaSample, cfg.Meta())
		assert.NoError(t, cfg.Validate())
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
image_package: ./cmd/hwyimage
work_dir: /tmp/images
meta_sample: example.com/s.Meta.Off
format: yaml
keep_images: true
build_tags: [purego]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "./cmd/hwyimage", cfg.ImagePackage)
	assert.Equal(t, ".", cfg.ModuleDir, "unset keys keep their defaults")
	assert.Equal(t, "/tmp/images", cfg.WorkDir)
	assert.Equal(t, SampleID{Owner: "example.com/s.Meta", Name: "Off"}, cfg.Meta())
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.True(t, cfg.KeepImages)
	assert.Equal(t, []string{"purego"}, cfg.BuildTags)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", "format: [", "parse config"},
		{"format", "format: xml", `invalid format "xml"`},
		{"meta", "meta_sample: nodot", "meta_sample"},
		{"package", `image_package: ""`, "image_package is empty"},
		{"scalar tag", "build_tags: [noasm]", "build_tags must not contain noasm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	cfg := DefaultConfig()
	cfg.MetaSample = "nodot"
	assert.ErrorIs(t, cfg.Validate(), ErrBadRequest)
}
