/*
Package config loads and validates the remx configuration.

	+-----------+     +----------+     +----------+
	| .remx.yaml| --> |  Parser  | --> |  Config  |
	| .remx.hcl |     | registry |     | (struct) |
	+-----------+     +----------+     +----------+

🎯 Purpose:
- Parses configuration from YAML or HCL files
- Validates dataset root, sampling quantity and resize settings
- Hashes the effective config so stale lock files can be detected

🔄 Flow:
1. Load reads the file and picks a registered parser by extension
2. The parser decodes into Config and validates it
3. Commands overlay CLI flags on top of the parsed values

Configuration is optional: every command can run from flags alone.
*/
package config
