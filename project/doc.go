// Package project holds the per-project state of spritelab: the JSON
// configuration written by init, environment settings, and the probe that
// inspects the host project's manifest.
package project
