// Package secret resolves credential fields against environment variables
// named after a fixed convention:
//
//	<KIND>_<SERVICE>_<FIELD>
//
// Every segment is upper-cased and any rune outside [A-Z0-9] becomes '_'.
// Field names written in camelCase are split at case boundaries, so the
// twitter consumerSecret is read from ANNOUNCE_TWITTER_CONSUMER_SECRET.
// Values are read at the moment of use; nothing is cached.
package secret
