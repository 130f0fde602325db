// Package resolver builds the listing resolution stack from viper settings.
package resolver

import (
	"net/http"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"

	"github.com/farbarter/goapi/base/codec"
	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
	"github.com/farbarter/goapi/service/chain"
	"github.com/farbarter/goapi/service/chain/contract"
	listing_usecase "github.com/farbarter/goapi/stores/listing/usecase"
	metadata_usecase "github.com/farbarter/goapi/stores/metadata/usecase"
	web_resource_repository "github.com/farbarter/goapi/stores/web_resource/repository"
	web_resource_usecase "github.com/farbarter/goapi/stores/web_resource/usecase"
)

type Stack struct {
	Chain     chain.Client
	Farbarter contract.FarbarterContract
	Listing   domain.ListingUseCase
}

// New dials the chain and wires contract, metadata and listing usecases.
// Callers own Stack.Chain and close it on shutdown.
func New(c bCtx.Ctx) (*Stack, error) {
	chainId := viper.GetInt32("chain.chainId")
	chainService, err := chain.NewClient(c, &chain.ClientCfg{
		ChainId:            chainId,
		RpcUrl:             viper.GetString("chain.rpcUrl"),
		MaxConcurrentCalls: viper.GetInt("chain.maxConcurrentCalls"),
	})
	if err != nil {
		return nil, err
	}

	contractAddr, err := codec.NormalizeAddress(viper.GetString("farbarter.contract"))
	if err != nil {
		c.WithFields(log.Fields{
			"contract": viper.GetString("farbarter.contract"),
			"err":      err,
		}).Error("codec.NormalizeAddress failed")
		chainService.Close()
		return nil, err
	}
	farbarter := contract.NewFarbarter(chainService, chainId, contractAddr)

	httpTimeout := viper.GetDuration("http.timeout")
	var ipfsReader domain.WebResourceReaderRepository
	if nodeApiUrl := viper.GetString("ipfs.nodeApiUrl"); nodeApiUrl != "" {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApiUrl), httpTimeout)
	} else {
		ipfsReader = web_resource_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gateway"), httpTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:   web_resource_repository.NewArReaderRepo(http.Client{}, viper.GetString("arweave.gateway"), httpTimeout, nil),
	})
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		WebResource: webResource,
	})

	return &Stack{
		Chain:     chainService,
		Farbarter: farbarter,
		Listing: listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
			Farbarter: farbarter,
			Metadata:  metadata,
		}),
	}, nil
}
