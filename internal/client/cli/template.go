package cli

const problemTemplate = `
=== Problem Details ===

ID:         {{.ID}}
Title:      {{.Title}}
URL:        {{.URL}}
Rating:     {{.Rating}}
Difficulty: {{.Difficulty}}
{{- if .ContestID }}
Contest:    {{.ContestID}} {{.ProblemIndex}}
{{- end}}

Solved:  {{if .Solved}}yes{{else}}no{{end}}
Starred: {{if .Starred}}yes{{else}}no{{end}}
{{- if .Notes }}

Notes:
---
{{.Notes}}
---
{{- end}}
{{- if .TimeComplexity }}
Time complexity:  {{.TimeComplexity}}
{{- end}}
{{- if .SpaceComplexity }}
Space complexity: {{.SpaceComplexity}}
{{- end}}
`

const usageTemplate = `
LeetKeeper Client

Usage:
  leetkeeper [OPTIONS] [COMMAND]

Running without a command starts the interactive table (requires a terminal).

Options:
  --version            Show version information
  --db PATH            Path to local database (default: leetkeeper.db)
  --dataset-url URL    Ratings dataset URL (or LEETKEEPER_DATASET_URL env var)

Commands:
  refresh              Download the dataset and merge it with local progress
  list [flags]         Print one page of the filtered problem table
  get <id>             Show full problem details
  solve <id>           Mark problem as solved
  unsolve <id>         Mark problem as unsolved
  star <id>            Star problem
  unstar <id>          Unstar problem
  note <id> [text]     Set free-text notes (empty text clears)
  tc <id> [text]       Set time-complexity annotation
  sc <id> [text]       Set space-complexity annotation
  stats                Show solved/starred totals
  status               Show local cache status
  help                 Show this help

List flags:
  -query S -min-rating N -max-rating N -solved -starred
  -sort FIELD -desc -page N -page-size N

Examples:
  leetkeeper refresh
  leetkeeper list -min-rating 1500 -max-rating 1800 -sort rating
  leetkeeper solve 1234
  leetkeeper note 1234 'sliding window, two pointers'
  leetkeeper list -starred -sort difficulty -desc
`
