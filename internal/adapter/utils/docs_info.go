// @title           Document Analyzer API
// @version         1.0
// @description     This API handles asynchronous document text extraction (OCR) and summarization status tracking.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email   ank.github@gmail.com

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package utils

//run redis
//docker run -p 6379:6379 -d redis

//tesseract needs to be installed on the host for OCR
//apt-get install -y tesseract-ocr libtesseract-dev

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs
