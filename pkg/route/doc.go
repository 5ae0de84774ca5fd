// Package route implements the mixer-path configuration engine.
//
// The engine loads a declarative description of named mixer paths
// (collections of control settings for an audio codec), flattens nested
// path references at load time, and applies only the deltas needed to
// move the live mixer from its current state to a requested path's
// state.
//
// # Model
//
//	Registry    one ControlState per control on the card:
//	            last committed value, pending value, saved reset value
//	Path        named, flattened, dedup'd list of (control, value)
//	Store       append-only, name-unique collection of paths
//	Router      ties a mixer.Device, Registry and Store together
//
// # Stage and commit
//
// ApplyPath and Reset only stage pending values. Update commits: every
// control whose pending value differs from its last committed value is
// written once (the scalar broadcast to all backing values) and nothing
// else is touched. Hardware writes are assumed non-free and potentially
// audible, so the untouched-unless-changed guarantee is the point of
// the whole design. Staging several paths before one Update yields a
// single atomic-looking transition.
//
// # Definitions
//
// Definitions arrive as a tag stream (pkg/pathdef), conventionally from
// a mixer_paths_<vendor>.xml file:
//
//	<mixer>
//	  <ctl name="Master Playback Switch" value="1"/>   <!-- initializer -->
//	  <path name="speaker">
//	    <ctl name="Speaker Switch" value="1"/>
//	    <path name="common"/>                           <!-- inclusion -->
//	  </path>
//	</mixer>
//
// Inclusion copies the referenced path's settings into the including
// path, so a referenced path must be fully defined earlier in the file;
// forward references are not supported and self-inclusion is rejected.
//
// # Concurrency
//
// A Router instance performs no internal locking. All mutations must
// come from one goroutine, or be serialized externally by the embedding
// system.
package route
