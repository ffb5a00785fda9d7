// Package deploy provides the Vibra contracts deployment procedure.
package deploy
