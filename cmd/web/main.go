// @title           Restaurant review API
// @version         1.0
// @description     REST backend for browsing restaurants, dishes and user reviews.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /

package main

import "resto_backend/internal/app"

func main() {
	app.Run()
}
