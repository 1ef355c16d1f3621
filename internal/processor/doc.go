// Package processor walks the configured documentation subdirectories and
// translates every eligible file with a phrase table, mirroring each file
// into the destination tree. A failing file is reported and counted, and the
// walk continues with the next one.
package processor
