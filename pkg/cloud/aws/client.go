package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsPkgConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/oldmonad/ec2Inventory/pkg/cloud"
	config "github.com/oldmonad/ec2Inventory/pkg/config/cloud"
	awsConfig "github.com/oldmonad/ec2Inventory/pkg/config/cloud/aws"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"go.uber.org/zap"
)

const describeInstances = "DescribeInstances"

type EC2Client interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// AWSProvider lists EC2 instances. When EC2Client is set it is used for every
// call; otherwise NewClient builds a fresh client per call.
type AWSProvider struct {
	EC2Client EC2Client
	NewClient func(ctx context.Context, cfg *awsConfig.Config) (EC2Client, error)
}

func NewAWSProvider() *AWSProvider {
	return &AWSProvider{NewClient: newClient}
}

func newClient(ctx context.Context, cfg *awsConfig.Config) (EC2Client, error) {
	client, err := NewEC2Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewEC2Client builds an EC2 client from static credentials only. Retries are
// disabled so every failure surfaces on the first attempt.
func NewEC2Client(ctx context.Context, cfg *awsConfig.Config) (*ec2.Client, error) {
	opts := []func(*awsPkgConfig.LoadOptions) error{
		awsPkgConfig.WithRegion(cfg.GetRegion()),
		awsPkgConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				cfg.SessionToken,
			),
		),
		awsPkgConfig.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, awsPkgConfig.WithHTTPClient(
			awshttp.NewBuildableClient().WithTimeout(cfg.HTTPTimeout),
		))
	}

	awsCfg, err := awsPkgConfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.NewAWSConfigLoad(err)
	}

	return ec2.NewFromConfig(awsCfg, func(o *ec2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}

func (p *AWSProvider) ListInstances(ctx context.Context, providerCfg config.ProviderConfig) (*cloud.Report, error) {
	awsCfgStruct, ok := providerCfg.(*awsConfig.Config)
	if !ok {
		return nil, errors.NewWrongConfigType(providerCfg)
	}

	// Must fail before any client exists.
	if err := awsCfgStruct.Validate(); err != nil {
		return nil, err
	}

	log := logger.WithField("component", "aws-provider")

	client := p.EC2Client
	if client == nil {
		build := p.NewClient
		if build == nil {
			build = newClient
		}
		c, err := build(ctx, awsCfgStruct)
		if err != nil {
			log.Error("Failed to build EC2 client", zap.Error(err))
			return nil, err
		}
		client = c
	}

	log.Info("Listing EC2 instances", zap.String("region", awsCfgStruct.GetRegion()))

	report := &cloud.Report{
		Region:       awsCfgStruct.GetRegion(),
		Reservations: make([]cloud.Reservation, 0),
	}

	paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			pe := errors.NewProviderError(describeInstances, err)
			log.Error("EC2 request failed",
				zap.String("operation", describeInstances),
				zap.Error(pe))
			return nil, pe
		}

		for _, r := range page.Reservations {
			report.Reservations = append(report.Reservations, mapReservation(r))
		}
	}

	log.Info("Listed EC2 instances",
		zap.Int("reservations", len(report.Reservations)),
		zap.Int("instances", report.InstanceCount()))

	return report, nil
}

func mapReservation(r types.Reservation) cloud.Reservation {
	res := cloud.Reservation{
		ReservationID: aws.ToString(r.ReservationId),
		Instances:     make([]cloud.Instance, 0, len(r.Instances)),
	}

	for _, instance := range r.Instances {
		res.Instances = append(res.Instances, mapInstance(instance))
	}
	return res
}

func mapInstance(instance types.Instance) cloud.Instance {
	i := cloud.Instance{
		InstanceID:   aws.ToString(instance.InstanceId),
		InstanceType: string(instance.InstanceType),
		Tags:         make(map[string]string, len(instance.Tags)),
	}

	if instance.State != nil {
		i.State = string(instance.State.Name)
	}

	for _, tag := range instance.Tags {
		i.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return i
}

func (p *AWSProvider) SetEC2Client(c EC2Client) {
	p.EC2Client = c
}
