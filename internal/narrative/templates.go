package narrative

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/stats"
)

// Input is everything the prompt and the fallback summary may reference.
type Input struct {
	MatchID  string
	Lang     Lang
	Metrics  stats.PlayerMetrics
	Timeline *stats.TimelineSummary
}

const promptES = `Analiza esta partida de League of Legends ({{.MatchID}}) y ayuda al jugador a mejorar.

Jugador: {{.Metrics.Name}} con {{.Metrics.Champion}}{{with .Metrics.Lane}} ({{.}}){{end}}, {{if .Metrics.Win}}victoria{{else}}derrota{{end}}.
KDA: {{.Metrics.Kills}}/{{.Metrics.Deaths}}/{{.Metrics.Assists}} (ratio {{fixed .Metrics.KDA}})
CS: {{.Metrics.CreepScore}} ({{opt .Metrics.CSPerMin}} por minuto)
Oro por minuto: {{opt .Metrics.GoldPerMin}}
Visión por minuto: {{opt .Metrics.VisionPerMin}}
Participación en asesinatos: {{pct .Metrics.KillParticipationPct}}%
Daño del equipo: {{pct .Metrics.TeamDamageSharePct}}%
{{with .Metrics.Opponent}}Rival de línea: {{.Name}} ({{.Champion}})
{{end}}{{with .Timeline}}{{if .Available}}CS a los 10: {{optInt .CSAt10}}, a los 20: {{optInt .CSAt20}}
CS/min 0-10: {{opt .CSPerMin0To10}}, 10-20: {{opt .CSPerMin10To20}}
Diferencia de oro a los 10: {{optInt .GoldDiffAt10}}, a los 20: {{optInt .GoldDiffAt20}}
Asesinatos (minuto): {{minutes .KillsAt}}
Muertes (minuto): {{minutes .DeathsAt}}
Dragones: {{len .Dragons}}, heraldos: {{len .Heralds}}, barones: {{len .Barons}}, torres: {{len .Towers}}
{{end}}{{end}}
Detecta errores comunes en posicionamiento, builds, farmeo y decisiones.
Sé claro y didáctico para ayudar al jugador a mejorar.`

const promptEN = `Analyze this League of Legends match ({{.MatchID}}) and help the player improve.

Player: {{.Metrics.Name}} on {{.Metrics.Champion}}{{with .Metrics.Lane}} ({{.}}){{end}}, {{if .Metrics.Win}}win{{else}}loss{{end}}.
KDA: {{.Metrics.Kills}}/{{.Metrics.Deaths}}/{{.Metrics.Assists}} (ratio {{fixed .Metrics.KDA}})
CS: {{.Metrics.CreepScore}} ({{opt .Metrics.CSPerMin}} per minute)
Gold per minute: {{opt .Metrics.GoldPerMin}}
Vision per minute: {{opt .Metrics.VisionPerMin}}
Kill participation: {{pct .Metrics.KillParticipationPct}}%
Team damage share: {{pct .Metrics.TeamDamageSharePct}}%
{{with .Metrics.Opponent}}Lane opponent: {{.Name}} ({{.Champion}})
{{end}}{{with .Timeline}}{{if .Available}}CS at 10: {{optInt .CSAt10}}, at 20: {{optInt .CSAt20}}
CS/min 0-10: {{opt .CSPerMin0To10}}, 10-20: {{opt .CSPerMin10To20}}
Gold difference at 10: {{optInt .GoldDiffAt10}}, at 20: {{optInt .GoldDiffAt20}}
Kills (minute): {{minutes .KillsAt}}
Deaths (minute): {{minutes .DeathsAt}}
Dragons: {{len .Dragons}}, heralds: {{len .Heralds}}, barons: {{len .Barons}}, towers: {{len .Towers}}
{{end}}{{end}}
Point out common mistakes in positioning, builds, farming and decision making.
Be clear and instructive so the player can improve.`

const fallbackES = `{{.Metrics.Name}} ({{.Metrics.Champion}}): KDA {{fixed .Metrics.KDA}} ({{.Metrics.Kills}}/{{.Metrics.Deaths}}/{{.Metrics.Assists}}), ` +
	`CS/min {{opt .Metrics.CSPerMin}}, oro/min {{opt .Metrics.GoldPerMin}}, participación en asesinatos {{pct .Metrics.KillParticipationPct}}%.` +
	`{{with .Timeline}}{{if .Available}} CS a los 10: {{optInt .CSAt10}}, diferencia de oro a los 10: {{optInt .GoldDiffAt10}}.{{end}}{{end}}`

const fallbackEN = `{{.Metrics.Name}} ({{.Metrics.Champion}}): KDA {{fixed .Metrics.KDA}} ({{.Metrics.Kills}}/{{.Metrics.Deaths}}/{{.Metrics.Assists}}), ` +
	`CS/min {{opt .Metrics.CSPerMin}}, gold/min {{opt .Metrics.GoldPerMin}}, kill participation {{pct .Metrics.KillParticipationPct}}%.` +
	`{{with .Timeline}}{{if .Available}} CS at 10: {{optInt .CSAt10}}, gold difference at 10: {{optInt .GoldDiffAt10}}.{{end}}{{end}}`

type templateSet struct {
	prompt   *template.Template
	fallback *template.Template
}

var templates = map[Lang]templateSet{
	LangES: newTemplateSet("es", promptES, fallbackES, "n/d"),
	LangEN: newTemplateSet("en", promptEN, fallbackEN, "n/a"),
}

func templatesFor(lang Lang) templateSet {
	if set, ok := templates[lang]; ok {
		return set
	}
	return templates[LangES]
}

func newTemplateSet(name, prompt, fallback, missing string) templateSet {
	funcs := template.FuncMap{
		"fixed": fixed,
		"opt": func(v *float64) string {
			if v == nil {
				return missing
			}
			return fixed(*v)
		},
		"pct": func(v *float64) string {
			if v == nil {
				return missing
			}
			return strconv.FormatFloat(*v, 'f', 1, 64)
		},
		"optInt": func(v *int) string {
			if v == nil {
				return missing
			}
			return strconv.Itoa(*v)
		},
		"minutes": func(v []float64) string {
			if len(v) == 0 {
				return "-"
			}
			parts := make([]string, len(v))
			for i, m := range v {
				parts[i] = strconv.FormatFloat(m, 'f', 1, 64)
			}
			return strings.Join(parts, ", ")
		},
	}
	return templateSet{
		prompt:   template.Must(template.New(name + "-prompt").Funcs(funcs).Parse(prompt)),
		fallback: template.Must(template.New(name + "-fallback").Funcs(funcs).Parse(fallback)),
	}
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func render(t *template.Template, in Input) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, in); err != nil {
		return "", err
	}
	return strings.TrimSpace(b.String()), nil
}
