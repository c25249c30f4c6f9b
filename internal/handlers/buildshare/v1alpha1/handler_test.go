package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/muutmoku/ao-build-share/internal/entities/build"
	"github.com/muutmoku/ao-build-share/internal/entities/equipment"
	"github.com/muutmoku/ao-build-share/internal/errors"
	v1alpha1 "github.com/muutmoku/ao-build-share/internal/handlers/buildshare/v1alpha1"
	buildsvc "github.com/muutmoku/ao-build-share/internal/services/build"
	buildmock "github.com/muutmoku/ao-build-share/internal/services/build/mock"
	catalogsvc "github.com/muutmoku/ao-build-share/internal/services/catalog"
	catalogsvcmock "github.com/muutmoku/ao-build-share/internal/services/catalog/mock"
	previewsvc "github.com/muutmoku/ao-build-share/internal/services/preview"
	previewmock "github.com/muutmoku/ao-build-share/internal/services/preview/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockBuild   *buildmock.MockService
	mockCatalog *catalogsvcmock.MockService
	mockPreview *previewmock.MockService
	server      *grpc.Server
	conn        *grpc.ClientConn
	client      v1alpha1.BuildServiceClient
	ctx         context.Context
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBuild = buildmock.NewMockService(s.ctrl)
	s.mockCatalog = catalogsvcmock.NewMockService(s.ctrl)
	s.mockPreview = previewmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BuildService:   s.mockBuild,
		CatalogService: s.mockCatalog,
		PreviewService: s.mockPreview,
	})
	s.Require().NoError(err)

	listener := bufconn.Listen(1 << 20)
	s.server = grpc.NewServer()
	v1alpha1.RegisterBuildServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener) // nolint:errcheck // stopped in TearDownTest
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewBuildServiceClient(conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	_ = s.conn.Close() // nolint:errcheck // test cleanup
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerValidates() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestServiceInfo() {
	info, ok := s.server.GetServiceInfo()[v1alpha1.ServiceName]
	s.Require().True(ok)
	s.Nil(info.Metadata, "struct messages have no backing proto file")

	names := make([]string, 0, len(info.Methods))
	for _, m := range info.Methods {
		names = append(names, m.Name)
	}
	s.ElementsMatch([]string{
		"NormalizeBuild", "SelectItem", "SelectEnchant", "UpdateDetails",
		"ListEnchants", "SearchItems", "PreviewBuild",
	}, names)

	for _, method := range v1alpha1.BuildServiceDesc.Methods {
		s.Contains([]string{
			v1alpha1.NormalizeBuildMethod, v1alpha1.SelectItemMethod, v1alpha1.SelectEnchantMethod,
			v1alpha1.UpdateDetailsMethod, v1alpha1.ListEnchantsMethod, v1alpha1.SearchItemsMethod,
			v1alpha1.PreviewBuildMethod,
		}, "/"+v1alpha1.ServiceName+"/"+method.MethodName)
	}
}

func (s *HandlerTestSuite) TestSelectItem() {
	state := build.New()
	state.Slots[equipment.SlotMainHand] = "T4_MAIN_SWORD"
	state.Enchants[equipment.SlotMainHand] = "0"

	s.mockBuild.EXPECT().
		SelectItem(gomock.Any(), &buildsvc.SelectItemInput{
			Query: "title=Solo",
			Slot:  equipment.SlotMainHand,
			Item:  "T4_MAIN_SWORD",
		}).
		Return(&buildsvc.SelectItemOutput{State: state, Query: "mainhand=T4_MAIN_SWORD"}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.SelectItemMethod, s.request(map[string]interface{}{
		"query": "title=Solo",
		"slot":  "mainhand",
		"item":  "T4_MAIN_SWORD",
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal("mainhand=T4_MAIN_SWORD", out["query"])
	gotState := out["state"].(map[string]interface{})
	s.Equal("T4_MAIN_SWORD", gotState["slots"].(map[string]interface{})["mainhand"])
	s.Equal("0", gotState["enchants"].(map[string]interface{})["mainhand"])
	s.Len(gotState["slots"], len(equipment.AllSlots()))
}

func (s *HandlerTestSuite) TestSelectEnchantRejected() {
	s.mockBuild.EXPECT().
		SelectEnchant(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("enchant \"9\" is not available").WithMeta("options", []string{"0", "1"}))

	_, err := s.client.Call(s.ctx, v1alpha1.SelectEnchantMethod, s.request(map[string]interface{}{
		"slot":    "mainhand",
		"enchant": "9",
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	meta := errors.GetMeta(errors.FromGRPCError(err))
	s.Equal([]interface{}{"0", "1"}, meta["options"])
}

func (s *HandlerTestSuite) TestUnknownSlot() {
	_, err := s.client.Call(s.ctx, v1alpha1.ListEnchantsMethod, s.request(map[string]interface{}{
		"slot": "ring",
		"base": "RING",
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.Call(s.ctx, v1alpha1.SelectItemMethod, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestUpdateDetailsOptionalFields() {
	s.mockBuild.EXPECT().
		UpdateDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *buildsvc.UpdateDetailsInput) (*buildsvc.UpdateDetailsOutput, error) {
			s.Require().NotNil(input.Title)
			s.Equal("Mists", *input.Title)
			s.Nil(input.Description)
			state := build.New()
			state.Title = *input.Title
			return &buildsvc.UpdateDetailsOutput{State: state, Query: "title=Mists"}, nil
		})

	resp, err := s.client.Call(s.ctx, v1alpha1.UpdateDetailsMethod, s.request(map[string]interface{}{
		"title": "Mists",
	}))
	s.Require().NoError(err)
	s.Equal("title=Mists", resp.AsMap()["query"])
}

func (s *HandlerTestSuite) TestListEnchants() {
	s.mockBuild.EXPECT().
		ListEnchants(gomock.Any(), &buildsvc.ListEnchantsInput{Slot: equipment.SlotHead, Base: "HEAD_PLATE_SET1"}).
		Return(&buildsvc.ListEnchantsOutput{Options: []string{"0", "1", "2"}, Default: "0"}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.ListEnchantsMethod, s.request(map[string]interface{}{
		"slot": "head",
		"base": "HEAD_PLATE_SET1",
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal([]interface{}{"0", "1", "2"}, out["options"])
	s.Equal("0", out["default"])
	s.Equal(false, out["locked"])
}

func (s *HandlerTestSuite) TestListEnchantsNotLoaded() {
	s.mockBuild.EXPECT().
		ListEnchants(gomock.Any(), gomock.Any()).
		Return(nil, errors.FailedPreconditionf("catalog for slot %s is not loaded", equipment.SlotBag))

	_, err := s.client.Call(s.ctx, v1alpha1.ListEnchantsMethod, s.request(map[string]interface{}{
		"slot": "bag",
		"base": "BAG",
	}))
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestSearchItems() {
	s.mockCatalog.EXPECT().
		SearchItems(gomock.Any(), &catalogsvc.SearchItemsInput{
			Slot:  equipment.SlotHead,
			Lang:  "DE-DE",
			Query: "helm",
			Limit: 5,
		}).
		Return(&catalogsvc.SearchItemsOutput{Items: []*catalogsvc.ItemSummary{
			{UniqueName: "T4_HEAD_PLATE_SET1", Name: "Soldatenhelm des Adepten", Tier: 4, Base: "HEAD_PLATE_SET1", Enchants: []string{"0", "1"}},
		}}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.SearchItemsMethod, s.request(map[string]interface{}{
		"slot":  "head",
		"lang":  "DE-DE",
		"q":     "helm",
		"limit": 5,
	}))
	s.Require().NoError(err)

	items := resp.AsMap()["items"].([]interface{})
	s.Require().Len(items, 1)
	first := items[0].(map[string]interface{})
	s.Equal("T4_HEAD_PLATE_SET1", first["uniqueName"])
	s.Equal(float64(4), first["tier"])
}

func (s *HandlerTestSuite) TestPreviewBuild() {
	s.mockPreview.EXPECT().
		PreviewBuild(gomock.Any(), &previewsvc.PreviewBuildInput{Query: "head=T4_HEAD_PLATE_SET1", Lang: "KO-KR"}).
		Return(&previewsvc.PreviewBuildOutput{Preview: &previewsvc.Preview{
			Title: "Solo",
			Lang:  "KO-KR",
			Slots: []*previewsvc.Descriptor{{
				Slot:     equipment.SlotHead,
				Label:    "Adept's Soldier Helmet",
				RenderID: "T4_HEAD_PLATE_SET1",
				ImageURL: "https://render.albiononline.com/v1/item/T4_HEAD_PLATE_SET1.png",
			}},
		}}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.PreviewBuildMethod, s.request(map[string]interface{}{
		"query": "head=T4_HEAD_PLATE_SET1",
		"lang":  "KO-KR",
	}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal("Solo", out["title"])
	slots := out["slots"].([]interface{})
	s.Require().Len(slots, 1)
	s.Equal("Adept's Soldier Helmet", slots[0].(map[string]interface{})["label"])
}

func (s *HandlerTestSuite) TestNormalizeBuild() {
	s.mockBuild.EXPECT().
		GetBuild(gomock.Any(), &buildsvc.GetBuildInput{Query: "?title=x"}).
		Return(&buildsvc.GetBuildOutput{State: build.New(), Query: "title=x"}, nil)

	resp, err := s.client.Call(s.ctx, v1alpha1.NormalizeBuildMethod, s.request(map[string]interface{}{
		"query": "?title=x",
	}))
	s.Require().NoError(err)
	s.Equal("title=x", resp.AsMap()["query"])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
