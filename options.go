package pica

// ConfigureOption customizes Program.Configure.
//
// Example:
//
//	// Shader code already resident: only rewire entry points and outputs.
//	err := prog.Configure(buf, pica.WithVertexCode(false), pica.WithGeometryCode(false))
type ConfigureOption func(*configureOptions)

// configureOptions holds optional configuration for Configure.
type configureOptions struct {
	vertexCode   bool
	geometryCode bool
}

// defaultConfigureOptions uploads the code of every attached stage.
func defaultConfigureOptions() configureOptions {
	return configureOptions{
		vertexCode:   true,
		geometryCode: true,
	}
}

// WithVertexCode controls whether the vertex shader code and operand
// descriptors are uploaded. Skip the upload when the same code is
// already loaded on the GPU.
func WithVertexCode(upload bool) ConfigureOption {
	return func(o *configureOptions) {
		o.vertexCode = upload
	}
}

// WithGeometryCode controls whether the geometry shader code and operand
// descriptors are uploaded.
func WithGeometryCode(upload bool) ConfigureOption {
	return func(o *configureOptions) {
		o.geometryCode = upload
	}
}
