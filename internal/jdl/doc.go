// Package jdl writes entities and relations in JDL:
//
//	entity Order {
//	  code String maxlength(20)
//	  total Long
//	}
//	relationship OneToMany { Order{items} to Item }
//
// Fields with a JDL type go inside the entity block in their original
// order; fields referencing other entities are written as relationship
// statements after it. maxlength is only written for String fields with a
// length. Entity blocks are separated by a blank line.
package jdl
