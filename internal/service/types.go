package service

// MovieItem is one movie as returned by the API.
type MovieItem struct {
	Id          int64   `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Ranking     int     `json:"ranking"`
	Review      string  `json:"review"`
	ImgUrl      string  `json:"img_url"`
}

type ListMoviesRequest struct{}

type ListMoviesReply struct {
	Movies []*MovieItem `json:"movies"`
}

type GetMovieRequest struct {
	Id int64 `json:"id"`
}

type SearchMoviesRequest struct {
	Title string `json:"title"`
}

type SearchResultItem struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
	PosterUrl   string `json:"poster_url"`
}

type SearchMoviesReply struct {
	Results []*SearchResultItem `json:"results"`
}

// AddMovieRequest selects a search result by its external id.
type AddMovieRequest struct {
	TmdbId int64 `json:"tmdb_id"`
}

type EditMovieRequest struct {
	Id     int64    `json:"id"`
	Rating *float64 `json:"rating"`
	Review *string  `json:"review"`
}

type DeleteMovieRequest struct {
	Id int64 `json:"id"`
}

type DeleteMovieReply struct{}

type HealthCheckRequest struct{}

type HealthCheckReply struct {
	Status string `json:"status"`
}
