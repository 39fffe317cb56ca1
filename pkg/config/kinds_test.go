package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConfigKind(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want ConfigKind
	}{
		{
			name: "nested sampling by sampler section",
			yaml: `
sampler:
  library: nautilus
prior:
  dataset: vasist_2023
`,
			want: ConfigKindNestedSampling,
		},
		{
			name: "importance sampling by draw_proposal_samples",
			yaml: `
draw_proposal_samples:
  n_samples: 1_024
`,
			want: ConfigKindImportanceSampling,
		},
		{
			name: "importance sampling by likelihood",
			yaml: `
likelihood:
  sigma: 0.125754
`,
			want: ConfigKindImportanceSampling,
		},
		{
			name: "plot by results",
			yaml: `
results:
  - label: fmpe
    file_path: runs/fmpe/results.hdf
`,
			want: ConfigKindPlot,
		},
		{
			name: "plot by figure",
			yaml: `
figure:
  format: pdf
`,
			want: ConfigKindPlot,
		},
		{
			name: "train by model",
			yaml: `
model:
  model_type: fmpe
`,
			want: ConfigKindTrain,
		},
		{
			name: "train by dataset",
			yaml: `
dataset:
  name: vasist_2023
`,
			want: ConfigKindTrain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectConfigKind([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectConfigKind_Undetectable(t *testing.T) {
	_, err := DetectConfigKind([]byte("foo: bar\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to detect config kind")
}

func TestDetectConfigKind_InvalidYAML(t *testing.T) {
	_, err := DetectConfigKind([]byte("foo: [unclosed\n"))
	require.Error(t, err)
}
