package main

import (
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "long flag single dash rewritten",
			args: []string{"jd", "-color", "a.json", "b.json"},
			want: []string{"jd", "--color", "a.json", "b.json"},
		},
		{
			name: "short flag untouched",
			args: []string{"jd", "-f", "patch"},
			want: []string{"jd", "-f", "patch"},
		},
		{
			name: "already double-dashed untouched",
			args: []string{"jd", "--yaml"},
			want: []string{"jd", "--yaml"},
		},
		{
			name: "short flag with equals split",
			args: []string{"jd", "-f=patch"},
			want: []string{"jd", "-f", "patch"},
		},
		{
			name: "long flag with equals rewritten and split",
			args: []string{"jd", "-precision=0.1"},
			want: []string{"jd", "--precision", "0.1"},
		},
		{
			name: "positional args untouched",
			args: []string{"jd", "a.json", "b.json"},
			want: []string{"jd", "a.json", "b.json"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
