package domain

type ImageURLStatus string

const (
	ImageURLResolved ImageURLStatus = "resolved"
	ImageURLNotFound ImageURLStatus = "not_found"
	ImageURLFailed   ImageURLStatus = "failed"
)

// ImageURLResult は画像URL解決の結果。「画像が無い」と「解決に失敗した」を区別する。
type ImageURLResult struct {
	url    string
	status ImageURLStatus
	err    error
}

func ResolvedImageURL(url string) ImageURLResult {
	return ImageURLResult{url: url, status: ImageURLResolved}
}

func NotFoundImageURL() ImageURLResult {
	return ImageURLResult{status: ImageURLNotFound}
}

func FailedImageURL(err error) ImageURLResult {
	return ImageURLResult{status: ImageURLFailed, err: err}
}

func (r ImageURLResult) URL() string {
	return r.url
}

func (r ImageURLResult) Status() ImageURLStatus {
	return r.status
}

func (r ImageURLResult) Err() error {
	return r.err
}

func (r ImageURLResult) IsResolved() bool {
	return r.status == ImageURLResolved
}

// OrEmpty は解決済みならURLを、それ以外は空文字を返す（画像を表示しないという縮退表示用）
func (r ImageURLResult) OrEmpty() string {
	if r.status != ImageURLResolved {
		return ""
	}
	return r.url
}
