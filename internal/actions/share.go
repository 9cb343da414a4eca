// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package actions

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	"github.com/jeranaias/lampstand/internal/model"
)

// shareTemplate renders an assistant reply as plain text.
const shareTemplate = `{{ .Text | trim }}
{{- with .Citation }}

> {{ . }}
{{- end }}
{{- if .Insights }}

Theologian insights:
{{- range .Insights }}
- {{ .Theologian }}: "{{ .Commentary | trim }}"
{{- end }}
{{- end }}

Shared from lampstand, {{ .CreatedAt | date "Jan 2, 2006 15:04" }}
`

var shareTmpl = template.Must(template.New("share").Funcs(sprig.TxtFuncMap()).Parse(shareTemplate))

// RenderShare formats msg for sharing outside the app.
func RenderShare(msg model.Message) (string, error) {
	var b strings.Builder
	if err := shareTmpl.Execute(&b, msg); err != nil {
		return "", errors.Wrap(err, "render share text")
	}
	return b.String(), nil
}

// Sharer renders messages and hands them to a copier.
type Sharer struct {
	copier *Copier
}

// NewSharer creates a sharer that places rendered text on the clipboard.
func NewSharer(c *Copier) *Sharer {
	return &Sharer{copier: c}
}

// Share renders msg and copies the result. It returns the rendered text.
func (s *Sharer) Share(msg model.Message) (string, error) {
	text, err := RenderShare(msg)
	if err != nil {
		return "", err
	}
	if err := s.copier.Copy(text); err != nil {
		return text, err
	}
	return text, nil
}
