// Package utils gathers the store, router, config, and utility symbols the
// shell modules need behind one import path. It holds no state.
package utils

import (
	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/internal/layout"
	"github.com/JaimeStill/admin-shell/internal/router"
	"github.com/JaimeStill/admin-shell/internal/store"
	"github.com/JaimeStill/admin-shell/pkg/route"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

// store
type Store = store.Store

var NewStore = store.NewStore

// layout
var RouterArrays = layout.RouterArrays

// router
type Router = router.Router

var (
	NewRouter     = router.New
	ResetRouter   = (*router.Router).Reset
	ConstantMenus = (*router.Router).ConstantMenus
)

// config
var (
	GetConfig                  = (*config.Config).GetConfig
	ResponsiveStorageNameSpace = (*config.Config).ResponsiveStorageNameSpace
)

// route tree
var (
	Ascending              = route.Ascending
	FilterTree             = route.FilterTree
	FilterNoPermissionTree = route.FilterNoPermissionTree
	FormatFlatteningRoutes = route.FormatFlatteningRoutes
)

// utilities
var (
	IsURL           = utils.IsURL
	IsEqual         = utils.IsEqual
	IsNumber        = utils.IsNumber
	Debounce        = utils.Debounce
	IsBoolean       = utils.IsBoolean
	StorageLocal    = utils.StorageLocal
	DeviceDetection = utils.DeviceDetection
)

// GetKeyList extracts key from every item, preserving order.
func GetKeyList[T any, K any](items []T, key func(T) K) []K {
	return utils.GetKeyList(items, key)
}

// types
type (
	SetType      = store.SetType
	AppType      = store.AppType
	UserType     = store.UserType
	MultiType    = store.MultiType
	CacheType    = store.CacheType
	PositionType = store.PositionType
)
