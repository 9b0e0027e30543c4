package errs

import "fmt"

type Code string

const (
	QueryWithRawQuery   Code = "QUERY_WITH_RAW_QUERY"
	InvalidQueryPair    Code = "INVALID_QUERY_PAIR"
	UnknownEndpoint     Code = "UNKNOWN_ENDPOINT"
	MissingRequiredPart Code = "MISSING_REQUIRED_PART"
)

var messages = map[Code]string{
	QueryWithRawQuery: `Invalid flag combination: cannot use --query with --raw-query

Usage:
  - Build the query string from key/value pairs:
      urlb build ... --query active=true --query page=2
  - Pass a ready-made query string:
      urlb build ... --raw-query "active=true&page=2"

Reason:
  both flags set the same query string; only one source can win.`,

	InvalidQueryPair: `Invalid --query value %[1]q: expected key=value

Usage:
  urlb build ... --query active=true`,

	UnknownEndpoint: `Unknown endpoint %[1]q in %[2]s

Run "urlb render" without arguments to list every endpoint of the manifest.`,

	MissingRequiredPart: `Missing URL part: --base, --route and --endpoint are all required

Usage:
  urlb build --base https://api.example.com --route /v1 --endpoint /users`,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	return fmt.Sprintf(msg, a...)
}
