package main

import (
	"fmt"
	"github.com/breedlens/breedlens-frontend/catalog"
	"github.com/breedlens/breedlens-frontend/controllers"
	"github.com/breedlens/breedlens-frontend/mlclient"
	"github.com/breedlens/breedlens-frontend/responders"
	"github.com/sirupsen/logrus"
	"net/http"
)

const breedsPath = "/breeds"

func main() {
	c, err := loadConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	c.configureLogging(logrus.StandardLogger())

	mux, err := newMux(c)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithFields(logrus.Fields{
		"port":    c.Port,
		"api_url": c.APIURL,
	}).Info("Starting breed recognition frontend")
	logrus.Fatal(http.ListenAndServe(fmt.Sprintf(":%s", c.Port), mux))
}

func newMux(c *config) (*http.ServeMux, error) {
	breeds, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	clientMaker := NewDefaultHttpClientMaker()
	predictionMaker := &mlclient.PredictionMaker{
		BaseURL:         c.APIURL,
		HttpClientMaker: clientMaker,
	}
	statusChecker := &mlclient.StatusChecker{
		BaseURL:         c.APIURL,
		HttpClientMaker: clientMaker,
	}

	cm := &RequestContextMaker{}
	statusResponder := &responders.WebStatusResponder{
		ExposeErrors: c.ExposeErrors,
	}

	recognize := &controllers.Recognize{
		PredictionMaker: predictionMaker,
		Catalog:         breeds,
		MaxUploadBytes:  c.MaxUploadBytes,
		PredictTimeout:  c.PredictTimeout,
	}
	breedHub := &controllers.BreedHub{
		Catalog: breeds,
	}
	breedDetail := &controllers.BreedDetail{
		Catalog:    breeds,
		PathPrefix: breedsPath + "/",
	}
	serviceStatus := &controllers.ServiceStatus{
		StatusChecker: statusChecker,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", onlyRoot(recognize.HandleFunc(cm, &responders.WebRecognizeResponder{})))
	mux.HandleFunc(breedsPath, breedHub.HandleFunc(cm, &responders.WebBreedHubResponder{}))
	mux.HandleFunc(breedsPath+"/", breedDetail.HandleFunc(cm, &responders.WebBreedDetailResponder{}))
	mux.HandleFunc("/healthz", serviceStatus.HandleFunc(cm, statusResponder))
	return mux, nil
}

// onlyRoot stops the catch-all pattern from serving unknown paths.
func onlyRoot(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}
}
