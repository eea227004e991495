// Package config loads the generator configuration from YAML.
//
// Every setting has a default matching the Russian spreadsheet corpus, so an
// empty file (or no file at all) is a valid configuration:
//
//	version: "1"
//	encoding: utf-8            # or windows-1251
//	columns:
//	  class_name: 1
//	  field_name: 2
//	  field_type: 5
//	  field_length: 6
//	  label: -1                # disabled
//	markers:
//	  non_entity: П
//	  list: Список
//	types:
//	  convertible: [Строка, Число, Дата/время]
//	  rules:                   # priority order
//	    - contains: Строка
//	      jdl: String
//	    - contains: Дата
//	      jdl: Instant
//	    - contains: Число
//	      jdl: Long
//	parents:
//	  mode: class_union        # or common
//	ui:
//	  registry: registry
//	  actions:
//	    - code: create
//	      name: Создать
package config
