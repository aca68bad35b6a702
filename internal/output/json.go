package output

import (
	"encoding/json"

	"github.com/pranshuparmar/portpause/pkg/model"
)

func ToJSON(eps []model.Endpoint) (string, error) {
	if eps == nil {
		eps = []model.Endpoint{}
	}
	data, err := json.MarshalIndent(eps, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
