/*
Package operation implements the dataset operations behind the remx CLI.

	+-----------+     +------------+     +-----------+
	|  dataset  | --> | Operation  | --> | augmented/|
	| (sampling)|     | (augment,  |     |  outputs  |
	+-----------+     |  rename,   |     +-----------+
	                  |  resize)   |
	                  +-----+------+
	                        |
	                  +-----+------+
	                  |   state    |
	                  | (.remx.lock)|
	                  +------------+

🎯 Purpose:
- Orchestrates sampling, transforming and writing of dataset images
- Records generated files in the ledger for status/clean
- Reports per-file outcomes and progress via the status manager

⚡ Key behaviors:
- Augment and rename abort on the first error; no retries, no partial
  failure isolation
- Every abort wraps a sentinel error kind (ErrDecodeFailure, ...) so
  callers can classify it with errors.Is
- Augment is strictly sequential; resize fans out over an errgroup
*/
package operation
