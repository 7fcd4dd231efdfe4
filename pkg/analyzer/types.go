package analyzer

const (
	// DefaultModel は GEMINI_MODEL 未指定時に利用するモデル名です。
	DefaultModel = "gemini-1.5-flash"

	// requestPartCount はリクエストに含めるパーツ数（テキスト、画像の順）です。
	requestPartCount = 2
)
