// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders API data and errors for the terminal.
//
// Every function returns a string and writes nothing, so callers decide
// where output goes.
package view

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/dragonball-client/models"
)

// BuildInfo renders the version header printed on start-up.
func BuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("Versión:", info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(field("Fecha:", info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(field("Commit:", info.BuildCommit()))

	return renderPage("DRAGON BALL CLIENT", b.String(), "")
}

// CharacterList renders one page of characters as a table.
func CharacterList(page models.Page[models.Character]) string {
	var b strings.Builder

	b.WriteString(faintStyle.Render(idColumn.Render("ID") + nameColumn.Render("NOMBRE") + raceColumn.Render("RAZA") + "KI"))
	for _, c := range page.Items {
		b.WriteString("\n")
		b.WriteString(idColumn.Render(strconv.Itoa(c.ID)))
		b.WriteString(nameColumn.Render(fitText(c.Name, 22)))
		b.WriteString(raceColumn.Render(fitText(valueOrDash(c.Race), 12)))
		b.WriteString(valueOrDash(c.Ki))
	}

	return renderPage("PERSONAJES", b.String(), pageFooter(page.Meta.CurrentPage, page.Meta.TotalPages, page.Meta.TotalItems))
}

// PlanetList renders one page of planets as a table.
func PlanetList(page models.Page[models.Planet]) string {
	var b strings.Builder

	b.WriteString(faintStyle.Render(idColumn.Render("ID") + nameColumn.Render("NOMBRE") + "ESTADO"))
	for _, p := range page.Items {
		b.WriteString("\n")
		b.WriteString(idColumn.Render(strconv.Itoa(p.ID)))
		b.WriteString(nameColumn.Render(fitText(p.Name, 22)))
		b.WriteString(stateColumn.Render(planetState(p)))
	}

	return renderPage("PLANETAS", b.String(), pageFooter(page.Meta.CurrentPage, page.Meta.TotalPages, page.Meta.TotalItems))
}

// Character renders a single character with its origin planet and
// transformations.
func Character(c models.Character) string {
	var b strings.Builder

	b.WriteString(field("Raza:", c.Race))
	b.WriteString("\n")
	b.WriteString(field("Género:", c.Gender))
	b.WriteString("\n")
	b.WriteString(field("Ki:", c.Ki))
	b.WriteString("\n")
	b.WriteString(field("Ki máximo:", c.MaxKi))
	b.WriteString("\n")
	b.WriteString(field("Afiliación:", c.Affiliation))
	if c.OriginPlanet != nil {
		b.WriteString("\n")
		b.WriteString(field("Planeta:", c.OriginPlanet.Name))
	}
	if len(c.Transformations) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Transformaciones"))
		for _, t := range c.Transformations {
			b.WriteString("\n  ")
			b.WriteString(nameColumn.Render(fitText(t.Name, 22)))
			b.WriteString(valueOrDash(t.Ki))
		}
	}
	if d := strings.TrimSpace(c.Description); d != "" {
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Width(72).Render(d))
	}

	return renderPage(strings.ToUpper(c.Name), b.String(), "")
}

// Planet renders a single planet with its known inhabitants.
func Planet(p models.Planet) string {
	var b strings.Builder

	b.WriteString(field("Estado:", planetState(p)))
	if len(p.Characters) > 0 {
		names := make([]string, 0, len(p.Characters))
		for _, c := range p.Characters {
			names = append(names, c.Name)
		}
		b.WriteString("\n")
		b.WriteString(field("Habitantes:", strings.Join(names, ", ")))
	}
	if d := strings.TrimSpace(p.Description); d != "" {
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Width(72).Render(d))
	}

	return renderPage(strings.ToUpper(p.Name), b.String(), "")
}

// Error renders a user-facing error message in a box.
func Error(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		message = "Error desconocido"
	}
	return errorBox.Render(errorStyle.Render("Error") + "\n\n" + message)
}

func planetState(p models.Planet) string {
	if p.IsDestroyed {
		return "destruido"
	}
	return "intacto"
}
