package service

import (
	"context"
	"net/http"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationMovieServiceListMovies   = "/movieshelf.v1.MovieService/ListMovies"
	OperationMovieServiceGetMovie     = "/movieshelf.v1.MovieService/GetMovie"
	OperationMovieServiceSearchMovies = "/movieshelf.v1.MovieService/SearchMovies"
	OperationMovieServiceAddMovie     = "/movieshelf.v1.MovieService/AddMovie"
	OperationMovieServiceEditMovie    = "/movieshelf.v1.MovieService/EditMovie"
	OperationMovieServiceDeleteMovie  = "/movieshelf.v1.MovieService/DeleteMovie"
	OperationMovieServiceHealthCheck  = "/movieshelf.v1.MovieService/HealthCheck"
)

// RegisterMovieServiceHTTPServer mounts the movie routes on s.
func RegisterMovieServiceHTTPServer(s *khttp.Server, svc *MovieService) {
	r := s.Route("/")
	r.GET("/movies", listMoviesHandler(svc))
	r.GET("/movies/{id}", getMovieHandler(svc))
	r.POST("/movies", addMovieHandler(svc))
	r.PATCH("/movies/{id}", editMovieHandler(svc))
	r.DELETE("/movies/{id}", deleteMovieHandler(svc))
	r.GET("/search", searchMoviesHandler(svc))
	r.GET("/healthz", healthCheckHandler(svc))
}

func listMoviesHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in ListMoviesRequest
		khttp.SetOperation(ctx, OperationMovieServiceListMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.ListMovies(ctx, req.(*ListMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func getMovieHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in GetMovieRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieServiceGetMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.GetMovie(ctx, req.(*GetMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func searchMoviesHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in SearchMoviesRequest
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieServiceSearchMovies)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.SearchMovies(ctx, req.(*SearchMoviesRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func addMovieHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in AddMovieRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieServiceAddMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.AddMovie(ctx, req.(*AddMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusCreated, out)
	}
}

func editMovieHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in EditMovieRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		// the path id wins over any id in the body
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieServiceEditMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.EditMovie(ctx, req.(*EditMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func deleteMovieHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in DeleteMovieRequest
		if err := ctx.BindVars(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationMovieServiceDeleteMovie)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.DeleteMovie(ctx, req.(*DeleteMovieRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}

func healthCheckHandler(svc *MovieService) khttp.HandlerFunc {
	return func(ctx khttp.Context) error {
		var in HealthCheckRequest
		khttp.SetOperation(ctx, OperationMovieServiceHealthCheck)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return svc.HealthCheck(ctx, req.(*HealthCheckRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(http.StatusOK, out)
	}
}
