// Package statecraft holds the rules of the strategy game: the entity model
// (countries, parties, parliaments, alliances, laws, wars) and the economy,
// diplomacy, politics and war engines that advance it one week at a time.
//
// The package performs no I/O and no logging. Every random draw goes
// through a Rand supplied by the caller.
package statecraft
