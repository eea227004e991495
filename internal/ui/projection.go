package ui

import (
	"fmt"

	"jdl-generator/internal/config"
	"jdl-generator/internal/model"
)

const presentationCodeTemplate = "%sPresentation"

// BaseField is a column of a list view.
type BaseField struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Length string `json:"length,omitempty"`
	Label  string `json:"label,omitempty"`
}

// NewBaseField describes f as a list column.
func NewBaseField(f model.Field) BaseField {
	return BaseField{
		Name:   f.FieldName,
		Type:   f.FieldType,
		Length: f.FieldLength,
		Label:  f.Label,
	}
}

// ProjectionInfo is the list-view configuration of an entity.
type ProjectionInfo struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	ParentCode string          `json:"parentCode"`
	ListFields []BaseField     `json:"listFields"`
	Actions    []config.Action `json:"actions"`
}

// RegistryItem is an entry of the interface registry.
type RegistryItem struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	ParentCode string `json:"parentCode"`
}

// ToProjectionInfo builds the projection of entityName listing fields and
// offering actions, attached to the given presentation.
func ToProjectionInfo(entityName string, fields *model.FieldSet, actions []config.Action, presentationCode string) ProjectionInfo {
	list := make([]BaseField, 0, fields.Len())
	for _, f := range fields.Fields() {
		list = append(list, NewBaseField(f))
	}

	return ProjectionInfo{
		Code:       entityName,
		Name:       entityName,
		ParentCode: presentationCode,
		ListFields: list,
		Actions:    append([]config.Action{}, actions...),
	}
}

// CreatePresentationFor creates the registry item presenting entityName
// under registryCode.
func CreatePresentationFor(entityName, registryCode string) RegistryItem {
	code := PresentationName(entityName)

	return RegistryItem{
		Code:       code,
		Name:       code,
		ParentCode: registryCode,
	}
}

// PresentationName returns the presentation code of an entity.
func PresentationName(entityName string) string {
	return fmt.Sprintf(presentationCodeTemplate, entityName)
}
