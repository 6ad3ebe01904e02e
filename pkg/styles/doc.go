// Package styles holds the static style lookup tables used by renderers and
// resolves go-theme selections into renderer configuration.
//
// Style variants are small string enums; every variant maps to a fixed set
// of classes and a theme token so markup stays themeable without carrying
// CSS in code.
package styles
