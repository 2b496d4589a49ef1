package translate

import "context"

type TranslateServiceAPI interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

var _ TranslateServiceAPI = (*TranslateService)(nil)
