// Package pipeline wires the generator stages together.
//
// Run flow:
//  1. Open each source in turn, assemble its entities, close it
//  2. Concatenate the entity lists (no merging across sources)
//  3. Infer relations
//  4. Emit JDL through a buffered writer, flushed before returning
//
// The first failing source stops the batch; its error is wrapped with the
// source name. Parent synthesis and UI descriptors hang off the same
// Coordinator so they share configuration and the assembled model.
package pipeline
