package scan

import (
	"homedrive-api/internal/domain/scan"
)

type (
	Stats struct {
		Malicious  int `json:"malicious"`
		Suspicious int `json:"suspicious"`
		Undetected int `json:"undetected"`
	}
	Result struct {
		Complete bool   `json:"complete"`
		FileName string `json:"file_name"`
		Data     Stats  `json:"data"`
	}
)

func ToResponseResult(rDomain scan.Result) Result {
	var r = Result{
		Complete: rDomain.Complete,
		FileName: rDomain.FileName,
		Data: Stats{
			Malicious:  rDomain.Stats.Malicious,
			Suspicious: rDomain.Stats.Suspicious,
			Undetected: rDomain.Stats.Undetected,
		},
	}

	return r
}
