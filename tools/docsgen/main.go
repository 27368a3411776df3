// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// docsgen renders the activity catalog to a markdown reference. Run it
// from the repository root:
//
//	go run ./tools/docsgen > docs/activities.md
package main

import (
	"fmt"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/chaosaws/chaosaws/discovery"
)

type moduleDoc struct {
	Name       string
	Activities []discovery.Activity
}

type templateData struct {
	Date    string
	Modules []moduleDoc
}

const docTemplate = `# chaosaws activities

Generated on {{.Date}}. Do not edit by hand.
{{range .Modules}}
## {{.Name}}

| Name | Kind | Description |
|------|------|-------------|
{{- range .Activities}}
| {{.Name}} | {{.Kind}} | {{.Description}} |
{{- end}}
{{end}}`

func main() {
	byModule := make(map[string][]discovery.Activity)
	for _, a := range discovery.Discover() {
		byModule[a.Module] = append(byModule[a.Module], a)
	}

	names := make([]string, 0, len(byModule))
	for name := range byModule {
		names = append(names, name)
	}
	sort.Strings(names)

	data := templateData{Date: time.Now().Format("2006-01-02")}
	for _, name := range names {
		data.Modules = append(data.Modules, moduleDoc{
			Name:       name,
			Activities: byModule[name],
		})
	}

	tmpl := template.Must(template.New("doc").Parse(docTemplate))
	if err := tmpl.Execute(os.Stdout, data); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
