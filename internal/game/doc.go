// Package game implements the 2048 board model and move resolution.
//
// A State owns a Grid of Tiles. Tiles store the exponent of their value, so a
// merge is an exponent increment and never touches floating point. Agents
// (Generator, Player) and observers (Viewer) receive a *State and must treat it
// as read-only; hypothetical futures are explored on Clone()d states.
package game
