package manifest

// Sample is the manifest written by "urlb init".
const Sample = `# urlb manifest
# base_url is used by every endpoint that does not set its own.
base_url: https://api.example.com

endpoints:
  - name: active-users
    route: /v1
    endpoint: /users
    # falsy values (false, 0, "", null) are dropped unless retain_null is set
    query:
      active: true
      deleted: false

  - name: user-audit
    route: /v1
    endpoint: /audit
    retain_null: true
    query:
      user: ~
      page: 1

  - name: search
    base_url: https://search.example.com
    route: /v2
    endpoint: /search
    query: "q=golang"
`
