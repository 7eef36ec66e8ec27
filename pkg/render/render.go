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

// Package render produces device configuration text from declarative
// intent.
package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/carverauto/wanprov/pkg/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders a named configuration domain from intent.
type Renderer interface {
	Render(templateName string, intent *models.ConfigIntent) (string, error)
}

// TemplateRenderer renders IOS-style configuration from the embedded
// template set.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing config templates: %w", err)
	}

	return &TemplateRenderer{templates: tmpl}, nil
}

// Render executes the named template against the intent. Template
// names are the embedded file names, e.g. "interfaces.tmpl".
func (r *TemplateRenderer) Render(templateName string, intent *models.ConfigIntent) (string, error) {
	var out strings.Builder

	if err := r.templates.ExecuteTemplate(&out, templateName, intent); err != nil {
		return "", fmt.Errorf("rendering %s: %w", templateName, err)
	}

	return strings.TrimLeft(out.String(), "\n"), nil
}
