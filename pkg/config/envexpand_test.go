package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution",
			input: "state_dir: {{.FLEET_HOME}}",
			env:   map[string]string{"FLEET_HOME": "/srv/fleet"},
			want:  "state_dir: /srv/fleet",
		},
		{
			name:  "literal ${VAR} passes through",
			input: "pattern: ${USER_ID}",
			env:   map[string]string{"USER_ID": "123"},
			want:  "pattern: ${USER_ID}",
		},
		{
			name:  "missing variable expands to empty",
			input: "state_dir: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "state_dir: ",
		},
		{
			name:  "plain yaml untouched",
			input: "project_path: /home/dev/project",
			env:   map[string]string{},
			want:  "project_path: /home/dev/project",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
